// Package safe_close coordinates graceful shutdown of long-running goroutines.
// Package safe_close 协调常驻 goroutine 的优雅关闭
package safe_close

import (
	"sync"
)

// SafeClose manages a group of goroutines that must be stopped together.
// Each attached goroutine receives a close signal channel and reports
// completion through the done callback.
// SafeClose 管理一组需要一起停止的 goroutine。
// 每个挂载的 goroutine 都会收到关闭信号通道，并通过 done 回调上报完成。
type SafeClose struct {
	mu          sync.Mutex
	wg          sync.WaitGroup
	closeSignal chan struct{}
	closeOnce   sync.Once
	closeErr    error
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach starts f in a new goroutine. f must call done when it has fully
// stopped, and should begin shutting down once closeSignal is closed.
// Attach 在新 goroutine 中启动 f。f 停止后必须调用 done，
// 收到 closeSignal 关闭后应开始退出。
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	done := func() {
		s.wg.Done()
	}
	go f(done, s.closeSignal)
}

// SendCloseSignal asks all attached goroutines to stop. The first non-nil
// error wins and is returned by WaitClosed.
// SendCloseSignal 通知所有挂载的 goroutine 停止。
// 第一个非 nil 错误会被 WaitClosed 返回。
func (s *SafeClose) SendCloseSignal(err error) {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closeErr = err
		s.mu.Unlock()
		close(s.closeSignal)
	})
}

// CloseSignal returns the channel closed by SendCloseSignal.
// CloseSignal 返回由 SendCloseSignal 关闭的通道
func (s *SafeClose) CloseSignal() <-chan struct{} {
	return s.closeSignal
}

// WaitClosed blocks until every attached goroutine has called done, then
// returns the error passed to SendCloseSignal, if any.
// WaitClosed 阻塞直到所有挂载的 goroutine 调用 done，
// 然后返回传递给 SendCloseSignal 的错误（如果有）。
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeErr
}
