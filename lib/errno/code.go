/*
Copyright 2024 The codecheck Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

 http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package errno

// compress module error codes
const (
	UnknownCodecAlgorithm  = 2001
	ShortCompressBuffer    = 2002
	FailedToCompress       = 2003
	FailedToDecompress     = 2004
	CompressedExceedsBound = 2005
	InvalidCompressedData  = 2006
)

// probe module error codes
const (
	RoundTripMismatch  = 3001
	NoCodecSelected    = 3002
	InvalidPayloadKind = 3003
	InvalidConcurrency = 3004
	ProbeFailed        = 3005
)

// config module error codes
const (
	InvalidPayloadSize = 4001
	InvalidRounds      = 4002
	EmptyLoggerPath    = 4003
	InvalidConfigFile  = 4004
)

// common error codes
const (
	InternalError = 9001
	RecoverPanic  = 9003

	// BuiltInError errors returned by built-in functions
	BuiltInError = 9007

	// ThirdPartyError errors returned by third-party packages
	ThirdPartyError = 9008

	ShortWrite = 9009
	ShortRead  = 9010
)
