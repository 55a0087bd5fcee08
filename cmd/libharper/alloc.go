package main

/*
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

// Returned for zero findings. Never freed: harper_free_lints ignores
// count <= 0.
static uintptr_t harper_empty_lints[1];

static uintptr_t* harper_empty_lint_array(void) {
	return harper_empty_lints;
}

static char* harper_copy_string(const char* src, size_t n) {
	char* dst = malloc(n + 1);
	if (dst == NULL) {
		return NULL;
	}
	if (n > 0) {
		memcpy(dst, src, n);
	}
	dst[n] = '\0';
	return dst;
}

static uintptr_t* harper_alloc_lints(size_t n) {
	return calloc(n, sizeof(uintptr_t));
}
*/
import "C"

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/yaklabco/goharper/pkg/handle"
	"github.com/yaklabco/goharper/pkg/marshal"
)

// liveBuffers counts malloc buffers handed to the host and not yet released
// through freeLintArray or releaseString. Hosts that free strings with
// free() directly leave it positive.
//
//nolint:gochecknoglobals // allocation counter
var liveBuffers atomic.Int64

// goBytes views a NUL-terminated C string without copying. NULL yields a
// nil slice. The view must not outlive the call; the bridge copies it.
func goBytes(p *C.char) []byte {
	if p == nil {
		return nil
	}
	n := int(C.strlen(p))
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), n)
}

// cString copies b into a fresh malloc buffer with a trailing NUL. The
// caller owns the result and releases it with free().
func cString(b []byte) (*C.char, error) {
	var src *C.char
	if len(b) > 0 {
		src = (*C.char)(unsafe.Pointer(unsafe.SliceData(b)))
	}
	p := C.harper_copy_string(src, C.size_t(len(b)))
	if p == nil {
		return nil, &marshal.Error{Op: marshal.OpOutbound, Offset: len(b), Err: marshal.ErrAllocationFailure}
	}
	liveBuffers.Add(1)
	return p, nil
}

// allocLints copies handles into a caller-owned uintptr_t array. An empty
// result is the static sentinel.
func allocLints(handles []handle.Handle) (*C.uintptr_t, error) {
	if len(handles) == 0 {
		return C.harper_empty_lint_array(), nil
	}

	arr := C.harper_alloc_lints(C.size_t(len(handles)))
	if arr == nil {
		return nil, fmt.Errorf("lint array of %d: %w", len(handles), marshal.ErrAllocationFailure)
	}
	liveBuffers.Add(1)
	out := unsafe.Slice(arr, len(handles))
	for i, h := range handles {
		out[i] = C.uintptr_t(h)
	}
	return arr, nil
}

func isEmptyLintArray(arr *C.uintptr_t) bool {
	return arr == C.harper_empty_lint_array()
}

// lintHandles reads count handles from a lint array.
func lintHandles(arr *C.uintptr_t, count C.int32_t) []handle.Handle {
	if arr == nil || count <= 0 || isEmptyLintArray(arr) {
		return nil
	}
	in := unsafe.Slice(arr, int(count))
	handles := make([]handle.Handle, len(in))
	for i, h := range in {
		handles[i] = handle.Handle(h)
	}
	return handles
}

// freeLintArray releases an array from allocLints.
func freeLintArray(arr *C.uintptr_t) {
	if arr == nil || isEmptyLintArray(arr) {
		return
	}
	C.free(unsafe.Pointer(arr))
	liveBuffers.Add(-1)
}

// releaseString frees a string returned by the library.
func releaseString(p *C.char) {
	if p == nil {
		return
	}
	C.free(unsafe.Pointer(p))
	liveBuffers.Add(-1)
}
