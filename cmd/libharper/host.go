package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import "unsafe"

// These helpers play the C host for the package tests, which cannot use
// cgo themselves.

type (
	cHandle = C.uintptr_t
	cInt32  = C.int32_t
	cText   = *C.char
)

// hostString returns a malloc copy of s owned by the host.
func hostString(s string) *C.char {
	return C.CString(s)
}

func freeHostString(p *C.char) {
	C.free(unsafe.Pointer(p))
}

// takeString copies and releases a string returned by the library. ok is
// false for NULL.
func takeString(p *C.char) (s string, ok bool) {
	if p == nil {
		return "", false
	}
	s = C.GoString(p)
	releaseString(p)
	return s, true
}

// lintAt reads element i of an array from harper_get_lints.
func lintAt(arr *C.uintptr_t, i int) C.uintptr_t {
	return unsafe.Slice(arr, i+1)[i]
}
