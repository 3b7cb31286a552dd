// Package anim drives the ripple animation.
//
//   - [Scheduler]: the render loop; one frame per tick until the context ends
//   - [Delay]: nominal frame period with optional jitter
//   - [DisplayWidth]: wave width for a terminal column count
//
// # Example
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//	s, _ := anim.New(code, symbols, os.Stdout, widthFn, anim.Config{Period: 16 * time.Millisecond})
//	_ = s.Run(ctx)
//
// # Thread Safety
//
// A Scheduler owns its frame state and must be run from one goroutine.
// Frames are composed and written strictly in counter order.
package anim
