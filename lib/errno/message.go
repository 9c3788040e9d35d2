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

type Message struct {
	format string
	level  Level
	module Module
}

func newMessage(format string, module Module, level Level) *Message {
	return &Message{
		format: format,
		level:  level,
		module: module,
	}
}

func newNoticeMessage(format string, module Module) *Message {
	return newMessage(format, module, LevelNotice)
}

func newWarnMessage(format string, module Module) *Message {
	return newMessage(format, module, LevelWarn)
}

func newFatalMessage(format string, module Module) *Message {
	return newMessage(format, module, LevelFatal)
}

var unknownMessage = newNoticeMessage("unknown error", ModuleUnknown)

// When an error message is initialized, the level and module corresponding to the error code are bound
// If the module to which the error code belongs cannot be determined during initialization, set to ModuleUnknown
var messageMap = map[Errno]*Message{
	// common error codes
	InternalError:   newWarnMessage("%v", ModuleUnknown),
	RecoverPanic:    newFatalMessage("runtime panic: %v", ModuleUnknown),
	BuiltInError:    newWarnMessage("%v", ModuleUnknown),
	ThirdPartyError: newWarnMessage("%v", ModuleUnknown),
	ShortWrite:      newWarnMessage("short write. succeeded in writing %d bytes, but expected %d bytes", ModuleUnknown),
	ShortRead:       newWarnMessage("short read. succeeded in reading %d bytes, but expected %d bytes", ModuleUnknown),

	// compress error codes
	UnknownCodecAlgorithm:  newWarnMessage("unknown codec algorithm: %s", ModuleCompress),
	ShortCompressBuffer:    newWarnMessage("compress buffer too small, expected at least %d bytes; actual %d", ModuleCompress),
	FailedToCompress:       newWarnMessage("failed to compress with %s: %v", ModuleCompress),
	FailedToDecompress:     newWarnMessage("failed to decompress with %s: %v", ModuleCompress),
	CompressedExceedsBound: newWarnMessage("compressed size %d exceeds bound %d for %s", ModuleCompress),
	InvalidCompressedData:  newWarnMessage("invalid compressed data for %s: %v", ModuleCompress),

	// probe error codes
	RoundTripMismatch:  newWarnMessage("round-trip mismatch for %s: source digest %016x, decoded digest %016x", ModuleProbe),
	NoCodecSelected:    newWarnMessage("no codec selected", ModuleProbe),
	InvalidPayloadKind: newWarnMessage("invalid payload kind: %s", ModuleProbe),
	InvalidConcurrency: newWarnMessage("invalid concurrency: %d", ModuleProbe),
	ProbeFailed:        newWarnMessage("%d of %d probes failed", ModuleProbe),

	// config error codes
	InvalidPayloadSize: newWarnMessage("invalid payload size: %v", ModuleConfig),
	InvalidRounds:      newWarnMessage("rounds must be positive, got %d", ModuleConfig),
	EmptyLoggerPath:    newWarnMessage("logger path must not be empty", ModuleConfig),
	InvalidConfigFile:  newWarnMessage("failed to load config file %s: %v", ModuleConfig),
}
