// Package utils
package utils

func ReverseForEach[T any](src []T, callback func(idx int, element T)) {
	for i := len(src) - 1; i >= 0; i-- {
		callback(i, src[i])
	}
}
