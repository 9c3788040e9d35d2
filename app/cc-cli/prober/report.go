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

package prober

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/codecheck/codecheck/lib/config"
	"github.com/codecheck/codecheck/lib/errno"
	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func WriteReport(w io.Writer, format string, results []*Result) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, results)
	case config.FormatTable:
		writeTable(w, results)
		return nil
	default:
		return errno.NewError(errno.InternalError, "format must be table or json")
	}
}

func writeJSON(w io.Writer, results []*Result) error {
	buf, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return errno.NewThirdParty(err, errno.ModuleReport)
	}
	buf = append(buf, '\n')
	_, err = w.Write(buf)
	return err
}

func writeTable(w io.Writer, results []*Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Codec", "Payload", "Bound", "Compressed", "Streamed", "Ratio", "AvgTime", "Status"})

	for _, r := range results {
		table.Append([]string{
			r.Codec,
			strconv.Itoa(r.PayloadSize),
			strconv.Itoa(r.Bound),
			strconv.Itoa(r.CompressedSize),
			strconv.Itoa(r.StreamSize),
			formatRatio(r.CompressedSize, r.PayloadSize),
			time.Duration(r.DurationNs).String(),
			formatStatus(r),
		})
	}
	table.Render()
}

func formatStatus(r *Result) string {
	if r.Failed() {
		return "FAIL: " + r.Error
	}
	if r.Verified {
		return "ok"
	}
	return "ok (unverified)"
}

func formatRatio(compressed, origin int) string {
	if origin == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", float64(compressed)/float64(origin)*100)
}
