package game

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// Profiler captures a CPU profile and execution trace when ticks run slow
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string

	// Background captures still writing
	pending sync.WaitGroup

	// Budget is the tick duration above which a capture is triggered
	Budget time.Duration

	slowTicks int
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, budget time.Duration) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create profiles dir: %w", err)
	}

	return &Profiler{
		captureCooldown: 10 * time.Second, // Don't capture more than once every 10 seconds
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
		Budget:          budget,
	}, nil
}

// Observe records one tick's duration and starts a capture if it blew the
// budget. Returns true when a capture was started.
func (p *Profiler) Observe(tick time.Duration) bool {
	if tick <= p.Budget {
		return false
	}

	p.mu.Lock()
	p.slowTicks++
	p.mu.Unlock()

	return p.CaptureProfile(fmt.Sprintf("slow-tick-%dms", tick.Milliseconds())) == nil
}

// SlowTicks returns how many observed ticks exceeded the budget
func (p *Profiler) SlowTicks() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.slowTicks
}

// CaptureProfile starts a background CPU profile and trace. Call Wait
// before exiting so the files are complete.
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	if time.Since(p.lastCaptureTime) < p.captureCooldown {
		p.mu.Unlock()
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", time.Since(p.lastCaptureTime))
	}
	if p.isProfiling {
		p.mu.Unlock()
		return fmt.Errorf("already profiling")
	}
	p.lastCaptureTime = time.Now()
	duration := p.captureDuration
	p.mu.Unlock()

	p.pending.Add(1)
	go func() {
		defer p.pending.Done()
		if err := p.CaptureProfileSync(reason, duration); err != nil {
			fmt.Printf("Error capturing profile: %v\n", err)
		}
	}()

	return nil
}

// Wait blocks until every background capture has been written
func (p *Profiler) Wait() {
	p.pending.Wait()
}

// SetCaptureDuration changes how long each capture records
func (p *Profiler) SetCaptureDuration(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.captureDuration = d
}

// CaptureProfileSync profiles for duration and blocks until the files are written
func (p *Profiler) CaptureProfileSync(reason string, duration time.Duration) error {
	p.mu.Lock()
	if p.isProfiling {
		p.mu.Unlock()
		return fmt.Errorf("already profiling")
	}
	p.isProfiling = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.isProfiling = false
		p.mu.Unlock()
	}()

	return p.capture(p.baseName(reason), duration)
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

func (p *Profiler) baseName(reason string) string {
	return fmt.Sprintf("%s-%s", time.Now().Format("20060102-150405"), reason)
}

// capture runs the CPU profile and the trace side by side
func (p *Profiler) capture(baseName string, duration time.Duration) error {
	var wg sync.WaitGroup
	var cpuErr, traceErr error
	wg.Add(2)

	go func() {
		defer wg.Done()
		cpuErr = p.captureCPUProfile(baseName, duration)
	}()

	go func() {
		defer wg.Done()
		traceErr = p.captureTrace(baseName, duration)
	}()

	wg.Wait()

	if cpuErr != nil {
		return cpuErr
	}
	if traceErr != nil {
		return traceErr
	}

	p.summarize(baseName)
	return nil
}

func (p *Profiler) captureCPUProfile(baseName string, duration time.Duration) error {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(duration)
	pprof.StopCPUProfile()

	fmt.Printf("CPU profile saved to: %s\n", profilePath)
	return nil
}

func (p *Profiler) captureTrace(baseName string, duration time.Duration) error {
	tracePath := filepath.Join(p.profilesDir, baseName+".trace")

	file, err := os.Create(tracePath)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(duration)
	trace.Stop()

	fmt.Printf("Trace saved to: %s\n", tracePath)
	return nil
}

// summarize prints where the capture went and the heap state at the time
func (p *Profiler) summarize(baseName string) {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	info, err := os.Stat(profilePath)
	if err != nil {
		fmt.Printf("Warning: Could not analyze profile: %v\n", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	fmt.Printf("=== Slow tick capture: %s (%.2f KB) ===\n", baseName, float64(info.Size())/1024)
	fmt.Printf("  go tool pprof -http=:8080 %s\n", profilePath)
	fmt.Printf("  Alloc: %d KB  HeapObjects: %d  NumGC: %d\n", m.Alloc/1024, m.HeapObjects, m.NumGC)
}
