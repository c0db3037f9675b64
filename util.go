package sdk

import "time"

// StringPtr is a convenience helper for optional string fields.
func StringPtr(s string) *string { return &s }

// BoolPtr is a convenience helper for optional boolean fields.
func BoolPtr(b bool) *bool { return &b }

// Int64Ptr is a convenience helper for optional int64 fields.
func Int64Ptr(v int64) *int64 { return &v }

// TimePtr is a convenience helper for optional time fields.
func TimePtr(t time.Time) *time.Time { return &t }
