// Package bench provides reproducible micro-benchmarks for objrt.
// Run via: go test ./bench -bench=. -benchmem -cpu 1,4,16
//
// We measure:
//  1. DictSet          — write-only workload on a mutable Dict
//  2. DictGet          — read-only workload (after warm-up)
//  3. DictGetParallel  — highly concurrent reads (b.RunParallel)
//  4. Hash             — Int/Str hash-computation cost
//  5. IncrefDecref     — refcount CAS-loop overhead
//
// NOTE: correctness tests live in the object and runtime packages;
// this file is only for performance.
package bench

import (
	"fmt"
	"math/rand"
	"testing"

	objrt "github.com/objrt/objrt/runtime"
)

const keys = 1 << 14 // 16384 keys for dataset

var ds = func() []string {
	arr := make([]string, keys)
	for i := range arr {
		arr[i] = fmt.Sprintf("key-%08x", rand.Uint32())
	}
	return arr
}()

func newTestDict() objrt.Handle {
	d, err := objrt.DictFromC(nil, nil)
	if err != nil {
		panic(err.Name())
	}
	return d
}

func BenchmarkDictSet(b *testing.B) {
	d := newTestDict()
	val := objrt.IntFromC(1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := objrt.Intern(ds[i&(keys-1)])
		if err := objrt.MapSetItem(d, k, val); err != nil {
			b.Fatal(err.Name())
		}
	}
}

func BenchmarkDictGet(b *testing.B) {
	d := newTestDict()
	val := objrt.IntFromC(1)
	for _, s := range ds {
		if err := objrt.MapSetItem(d, objrt.Intern(s), val); err != nil {
			b.Fatal(err.Name())
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := objrt.Intern(ds[i&(keys-1)])
		if _, err := objrt.MapGetItem(d, k); err != nil {
			b.Fatal(err.Name())
		}
	}
}

func BenchmarkDictGetParallel(b *testing.B) {
	d := newTestDict()
	val := objrt.IntFromC(1)
	for _, s := range ds {
		if err := objrt.MapSetItem(d, objrt.Intern(s), val); err != nil {
			b.Fatal(err.Name())
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		idx := rand.Intn(keys)
		for pb.Next() {
			idx = (idx + 1) & (keys - 1)
			k := objrt.Intern(ds[idx])
			_, _ = objrt.MapGetItem(d, k)
		}
	})
}

func BenchmarkHashInt(b *testing.B) {
	n := objrt.IntFromC(123456789)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := objrt.Hash(n); err != nil {
			b.Fatal(err.Name())
		}
	}
}

func BenchmarkHashStr(b *testing.B) {
	s := objrt.StrFromC("the quick brown fox jumps over the lazy dog")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := objrt.Hash(s); err != nil {
			b.Fatal(err.Name())
		}
	}
}

func BenchmarkIncrefDecref(b *testing.B) {
	n := objrt.IntFromC(42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		objrt.Incref(n)
		objrt.Decref(n)
	}
}
