package worker

import (
	"sync"

	"go.uber.org/zap"
)

// Task 是交由 pool 執行的工作
type Task func()

// Pool 固定數量 worker 的背景工作池。
// Submit 不會阻塞：佇列已滿或已 Stop 時丟棄工作並回傳 false。
type Pool interface {
	Submit(Task) bool
	Stop()
}

// NewPool 建立 n 個 worker 的 pool，n<=0 時為 1。
// 工作 panic 會被攔截並以 log 記錄，不影響其他工作。
func NewPool(n int, log *zap.Logger) Pool {
	if n <= 0 {
		n = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	p := &pool{jobs: make(chan Task, n), log: log}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.loop()
	}
	return p
}

type pool struct {
	jobs    chan Task
	wg      sync.WaitGroup
	mu      sync.RWMutex
	stopped bool
	log     *zap.Logger
}

func (p *pool) loop() {
	defer p.wg.Done()
	for job := range p.jobs {
		p.run(job)
	}
}

func (p *pool) run(job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("worker task panicked", zap.Any("panic", r))
		}
	}()
	job()
}

func (p *pool) Submit(t Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}
	select {
	case p.jobs <- t:
		return true
	default:
		return false
	}
}

// Stop 關閉佇列並等待已提交的工作完成，可重複呼叫
func (p *pool) Stop() {
	p.mu.Lock()
	if !p.stopped {
		p.stopped = true
		close(p.jobs)
	}
	p.mu.Unlock()
	p.wg.Wait()
}
