package handler

import (
	"sort"
	"time"

	"github.com/philipp01105/bootlog/accumulator"
	"github.com/philipp01105/bootlog/core"
)

// dispatch hands a bridged record to h. Messages coming from other
// logging APIs are already final, so they travel without Args and any
// percent signs they contain stay literal.
func dispatch(h Handler, t time.Time, level core.Level, msg string) error {
	if fh, ok := h.(FastHandler); ok {
		return fh.HandleLog(t, level, msg, nil)
	}
	entry := core.GetEntry()
	entry.Time = t
	entry.Level = level
	entry.Message = msg
	err := h.Handle(entry)
	core.PutEntry(entry)
	return err
}

// appendPairs renders fields as " key=value" suffixes in key order.
func appendPairs(acc *accumulator.Accumulator, fields map[string]any) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		acc.AppendString(" ").AppendString(k).AppendString("=").Append(fields[k])
	}
}
