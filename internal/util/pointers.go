package util

func Int64Pointer(i int64) *int64 {
	return &i
}

func FloatPointer(f float64) *float64 {
	return &f
}
