// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest holds small generic slice transformations.
package slicest

// Map applies fn to every element.
func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	result := make([]U, len(s))
	for i, t := range s {
		result[i] = fn(t)
	}
	return result
}

// MapX applies fn to every element and stops at the first error.
func MapX[T, U any, S ~[]T](s S, fn func(T) (U, error)) ([]U, error) {
	result := make([]U, 0, len(s))
	for _, t := range s {
		u, err := fn(t)
		if err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	return result, nil
}

// Filter keeps the elements for which fn returns true.
func Filter[T any, S ~[]T](s S, fn func(T) bool) S {
	var result S
	for _, t := range s {
		if fn(t) {
			result = append(result, t)
		}
	}
	return result
}
