// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples that hand elements between goroutines through
// atomix acquire-release pairs. Go's race detector cannot observe that
// ordering, so the examples are excluded from race testing.

package spsc_test

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/spsc"
)

// ExampleNewYak demonstrates a basic cached-cursor queue.
func ExampleNewYak() {
	q := spsc.NewYak[int](8)

	// Producer sends 5 values
	for i := 1; i <= 5; i++ {
		v := i * 10
		q.Enqueue(&v)
	}

	// Consumer receives values
	for range 5 {
		v, _ := q.Dequeue()
		fmt.Println(v)
	}

	// Output:
	// 10
	// 20
	// 30
	// 40
	// 50
}

// ExampleNewFF demonstrates full and empty signalling.
func ExampleNewFF() {
	q := spsc.NewFF[string](2)

	for _, s := range []string{"a", "b", "c"} {
		if err := q.Enqueue(&s); spsc.IsWouldBlock(err) {
			fmt.Println("full, dropped", s)
		}
	}

	head, _ := q.Peek()
	fmt.Println("peek:", head, "len:", q.Len())

	for {
		s, err := q.Dequeue()
		if err != nil {
			fmt.Println("empty")
			break
		}
		fmt.Println(s)
	}

	// Output:
	// full, dropped c
	// peek: a len: 2
	// a
	// b
	// empty
}

// ExampleSplit demonstrates a two-stage pipeline with ownership split
// between producer and consumer goroutines.
func ExampleSplit() {
	p, c := spsc.Split[int](spsc.NewThompson[int](4))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() { // Producer
		defer wg.Done()
		backoff := iox.Backoff{}
		for i := range 10 {
			for p.Enqueue(&i) != nil {
				backoff.Wait()
			}
			backoff.Reset()
		}
	}()

	sum := 0
	backoff := iox.Backoff{}
	for received := 0; received < 10; {
		v, err := c.Dequeue()
		if err != nil {
			backoff.Wait()
			continue
		}
		backoff.Reset()
		sum += v
		received++
	}
	wg.Wait()

	fmt.Println("sum:", sum)

	// Output:
	// sum: 45
}

// ExampleNewFFPtr demonstrates zero-copy pointer passing.
func ExampleNewFFPtr() {
	type Message struct {
		Data string
	}

	q := spsc.NewFFPtr(4)

	msg := &Message{Data: "hello"}
	q.Enqueue(unsafe.Pointer(msg))

	ptr, _ := q.Dequeue()
	fmt.Println((*Message)(ptr).Data)

	// nil is the absent marker
	err := q.Enqueue(nil)
	fmt.Println(errors.Is(err, spsc.ErrInvalidArgument))

	// Output:
	// hello
	// true
}

// ExampleBuild demonstrates choosing an algorithm from configuration.
func ExampleBuild() {
	for _, name := range []string{"yak", "thompson", "ff"} {
		algo, err := spsc.ParseAlgorithm(name)
		if err != nil {
			panic(err)
		}
		q := spsc.Build[int](spsc.New(100).Algorithm(algo).Sparse(1))
		fmt.Printf("%s: %T cap=%d\n", algo, q, q.Cap())
	}

	// Output:
	// yak: *spsc.YakSparse[int] cap=128
	// thompson: *spsc.Thompson[int] cap=128
	// ff: *spsc.FF[int] cap=128
}
