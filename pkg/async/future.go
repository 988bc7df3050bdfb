// Package async 把模拟的网络延迟放在接口层：领域函数保持同步，
// 在需要“异步加载”的地方用 Future 包一层，并在等待时响应 context 取消。
package async

import (
	"context"
	"sync/atomic"
	"time"
)

// Future 一次异步加载的结果
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go 在新的 goroutine 中等待 delay 后执行 fn。
// delay 期间 ctx 被取消时 fn 不会执行，结果为 ctx.Err()。
func Go[T any](ctx context.Context, delay time.Duration, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if delay > 0 {
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				f.err = ctx.Err()
				return
			case <-timer.C:
			}
		}

		f.val, f.err = fn(ctx)
	}()

	return f
}

// Await 阻塞到结果就绪或 ctx 结束
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done 结果就绪后关闭
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Delayer 可热更新的延迟配置
type Delayer struct {
	d atomic.Int64
}

func NewDelayer(d time.Duration) *Delayer {
	delayer := &Delayer{}
	delayer.Set(d)
	return delayer
}

func (d *Delayer) Set(v time.Duration) {
	if v < 0 {
		v = 0
	}
	d.d.Store(int64(v))
}

func (d *Delayer) Get() time.Duration {
	if d == nil {
		return 0
	}
	return time.Duration(d.d.Load())
}

// Load 按 Delayer 当前的延迟执行 fn 并等待结果
func Load[T any](ctx context.Context, d *Delayer, fn func(context.Context) (T, error)) (T, error) {
	return Go(ctx, d.Get(), fn).Await(ctx)
}
