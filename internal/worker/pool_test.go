package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingJob struct {
	runs int32
	done chan struct{}
}

func (j *countingJob) Process(ctx context.Context) error {
	atomic.AddInt32(&j.runs, 1)
	select {
	case j.done <- struct{}{}:
	default:
	}
	return nil
}

func TestPoolProcessesJobs(t *testing.T) {
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	job := &countingJob{done: make(chan struct{}, TestQueueSize)}
	for i := 0; i < TestExpectedJobCount; i++ {
		pool.Enqueue(job)
	}

	timeout := time.After(time.Second)
	for processed := 0; processed < TestExpectedJobCount; processed++ {
		select {
		case <-job.done:
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, atomic.LoadInt32(&job.runs), int32(TestExpectedJobCount))
}
