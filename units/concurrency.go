package units

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"
)

// runConcurrency walks through goroutines, channels, select, mutexes,
// and context timeouts. Output from concurrent stages is collected and
// sorted before printing so the demonstration stays deterministic.
func runConcurrency(w io.Writer) error {
	section(w, 1, "Goroutines & WaitGroup")
	var wg sync.WaitGroup
	results := make([]string, 3)
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			results[id] = fmt.Sprintf("worker %d done", id)
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		fmt.Fprintln(w, r)
	}

	section(w, 2, "Channels")
	// An unbuffered channel synchronizes sender and receiver.
	ch := make(chan string)
	go func() { ch <- "hello over a channel" }()
	fmt.Fprintln(w, <-ch)

	// A buffered channel decouples them up to its capacity.
	buffered := make(chan int, 3)
	for i := 1; i <= 3; i++ {
		buffered <- i * 10
	}
	close(buffered)
	// Range drains until the closed channel is empty.
	for v := range buffered {
		fmt.Fprintf(w, "received %d\n", v)
	}

	section(w, 3, "Directional Channels & Pipelines")
	generate := func(out chan<- int, n int) {
		for i := 1; i <= n; i++ {
			out <- i
		}
		close(out)
	}
	square := func(in <-chan int, out chan<- int) {
		for v := range in {
			out <- v * v
		}
		close(out)
	}
	stage1 := make(chan int)
	stage2 := make(chan int)
	go generate(stage1, 4)
	go square(stage1, stage2)
	fmt.Fprint(w, "pipeline:")
	for v := range stage2 {
		fmt.Fprintf(w, " %d", v)
	}
	fmt.Fprintln(w)

	section(w, 4, "Select")
	fast := make(chan string, 1)
	slow := make(chan string, 1)
	fast <- "fast source"
	select {
	case msg := <-fast:
		fmt.Fprintf(w, "select picked the ready channel: %s\n", msg)
	case msg := <-slow:
		fmt.Fprintf(w, "unexpected: %s\n", msg)
	case <-time.After(time.Second):
		fmt.Fprintln(w, "timeout")
	}

	section(w, 5, "Mutex")
	var (
		mu      sync.Mutex
		counter int
	)
	var group sync.WaitGroup
	for i := 0; i < 50; i++ {
		group.Add(1)
		go func() {
			defer group.Done()
			mu.Lock()
			counter++
			mu.Unlock()
		}()
	}
	group.Wait()
	fmt.Fprintf(w, "50 goroutines incremented safely: counter=%d\n", counter)

	section(w, 6, "Context Timeout")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		time.Sleep(time.Second) // deliberately slower than the deadline
		close(done)
	}()
	select {
	case <-done:
		fmt.Fprintln(w, "work finished in time")
	case <-ctx.Done():
		fmt.Fprintf(w, "gave up: %v\n", ctx.Err())
	}

	section(w, 7, "Fan-In")
	merged := make(chan int)
	var producers sync.WaitGroup
	for p := 1; p <= 3; p++ {
		producers.Add(1)
		go func(id int) {
			defer producers.Done()
			merged <- id * 100
		}(p)
	}
	go func() {
		producers.Wait()
		close(merged)
	}()

	var collected []int
	for v := range merged {
		collected = append(collected, v)
	}
	sort.Ints(collected) // arrival order is nondeterministic
	fmt.Fprintf(w, "fan-in collected %v\n", collected)

	return nil
}
