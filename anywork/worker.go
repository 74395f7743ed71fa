package anywork

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/joshyorko/sbomlic/common"
)

var (
	group       WorkGroup
	pipeline    WorkQueue
	failpipe    Failures
	errcount    Counters
	headcount   uint64
	WorkerCount int
)

type Work func()
type WorkQueue chan Work
type Failures chan string
type Counters chan uint64

type WorkGroup struct {
	waiter *sync.WaitGroup
}

func NewGroup() WorkGroup {
	return WorkGroup{
		waiter: &sync.WaitGroup{},
	}
}

func (it WorkGroup) add() {
	it.waiter.Add(1)
}

func (it WorkGroup) done() {
	it.waiter.Done()
}

func (it WorkGroup) Wait() {
	it.waiter.Wait()
}

func catcher(title string, identity uint64) {
	catch := recover()
	if catch != nil {
		failpipe <- fmt.Sprintf("Recovering %q #%d: %v", title, identity, catch)
	}
}

func process(fun Work, identity uint64) {
	defer catcher("process", identity)
	fun()
}

func member(identity uint64) {
	defer catcher("member", identity)
	for {
		work, ok := <-pipeline
		if !ok {
			break
		}
		process(work, identity)
		group.done()
	}
}

func watcher(failures Failures, counters Counters) {
	counter := uint64(0)
	for {
		select {
		case fail := <-failures:
			counter += 1
			fmt.Fprintln(os.Stderr, fail)
		case counters <- counter:
			counter = 0
		}
	}
}

func init() {
	group = NewGroup()
	pipeline = make(WorkQueue, 1000)
	failpipe = make(Failures)
	errcount = make(Counters)
	headcount = 0
	AutoScale()
	go watcher(failpipe, errcount)
}

func Scale() uint64 {
	return headcount
}

// AutoScale grows the member pool up to the configured worker count.
// Parsing is CPU bound, so the cap follows available processors.
// Members are never torn down, pool only grows.
func AutoScale() {
	var limit uint64
	if WorkerCount > 1 {
		limit = uint64(WorkerCount)
	} else {
		limit = uint64(common.OptimalWorkerCount())
	}

	for headcount < limit {
		go member(headcount)
		headcount += 1
	}
}

func Backlog(todo Work) {
	if todo != nil {
		group.add()
		pipeline <- todo
	}
}

// Sync waits until all backlogged work is done and reports failure
// count as an error. Failed work items have already been reported on
// stderr by the watcher.
func Sync() error {
	trials := int(Scale())
	for retries := 0; retries < trials; retries++ {
		runtime.Gosched()
	}
	group.Wait()
	count := <-errcount
	if count > 0 {
		return fmt.Errorf("There has been %d failures. See messages above.", count)
	}
	return nil
}
