package exercise

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Solution 1: Cache with TTL

type SolutionCache struct {
	mu    sync.RWMutex
	items map[string]solutionCacheItem
}

type solutionCacheItem struct {
	value     interface{}
	expiresAt time.Time
}

func NewSolutionCache() *SolutionCache {
	return &SolutionCache{
		items: make(map[string]solutionCacheItem),
	}
}

func (c *SolutionCache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = solutionCacheItem{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (c *SolutionCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[key]
	if !ok {
		return nil, false
	}

	// Check expiration
	if time.Now().After(item.expiresAt) {
		return nil, false
	}

	return item.value, true
}

func (c *SolutionCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// Cleanup removes expired items (call periodically)
func (c *SolutionCache) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, item := range c.items {
		if now.After(item.expiresAt) {
			delete(c.items, key)
		}
	}
}

// Solution 2: Circuit Breaker

type SolutionCircuitBreaker struct {
	mu              sync.Mutex
	state           CircuitState
	failures        int
	successes       int
	lastFailureTime time.Time
	threshold       int
	timeout         time.Duration
}

func NewSolutionCircuitBreaker(threshold int, timeout time.Duration) *SolutionCircuitBreaker {
	return &SolutionCircuitBreaker{
		state:     StateClosed,
		threshold: threshold,
		timeout:   timeout,
	}
}

func (cb *SolutionCircuitBreaker) Call(fn func() error) error {
	cb.mu.Lock()

	// Check if we should transition from open to half-open
	if cb.state == StateOpen {
		if time.Since(cb.lastFailureTime) > cb.timeout {
			cb.state = StateHalfOpen
			cb.failures = 0
			cb.successes = 0
		} else {
			cb.mu.Unlock()
			return errors.New("circuit breaker is open")
		}
	}

	cb.mu.Unlock()

	// Execute function
	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil {
		cb.failures++
		cb.lastFailureTime = time.Now()

		// Open circuit if threshold exceeded
		if cb.failures >= cb.threshold {
			cb.state = StateOpen
		}

		return err
	}

	// Success
	cb.successes++

	// Close circuit if enough successes in half-open state
	if cb.state == StateHalfOpen && cb.successes >= 2 {
		cb.state = StateClosed
		cb.failures = 0
		cb.successes = 0
	}

	return nil
}

func (cb *SolutionCircuitBreaker) State() CircuitState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Solution 3: Timeout Middleware

func SolutionTimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			done := make(chan struct{})

			go func() {
				next.ServeHTTP(w, r.WithContext(ctx))
				close(done)
			}()

			select {
			case <-done:
				// Request completed
			case <-ctx.Done():
				// Timeout
				http.Error(w, "Gateway Timeout", http.StatusGatewayTimeout)
			}
		})
	}
}

// Solution 4: Worker Pool

type SolutionWorkerPool struct {
	numWorkers int
	jobs       chan Job
	wg         sync.WaitGroup
}

func NewSolutionWorkerPool(numWorkers int) *SolutionWorkerPool {
	return &SolutionWorkerPool{
		numWorkers: numWorkers,
		jobs:       make(chan Job, numWorkers*2),
	}
}

func (wp *SolutionWorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx)
	}
}

func (wp *SolutionWorkerPool) worker(ctx context.Context) {
	defer wp.wg.Done()

	for {
		select {
		case job, ok := <-wp.jobs:
			if !ok {
				return
			}
			job()
		case <-ctx.Done():
			return
		}
	}
}

func (wp *SolutionWorkerPool) Submit(job Job) {
	wp.jobs <- job
}

func (wp *SolutionWorkerPool) Shutdown() {
	close(wp.jobs)
	wp.wg.Wait()
}

// Solution 5: Retry with Exponential Backoff

func SolutionRetryWithBackoff(
	ctx context.Context,
	maxRetries int,
	initialDelay time.Duration,
	fn func() error,
) error {
	var err error

	for attempt := 0; attempt < maxRetries; attempt++ {
		// Try the operation
		err = fn()
		if err == nil {
			return nil
		}

		// Don't wait after last attempt
		if attempt == maxRetries-1 {
			break
		}

		// Calculate backoff delay: initialDelay * 2^attempt
		delay := initialDelay * time.Duration(math.Pow(2, float64(attempt)))

		// Wait with context cancellation support
		select {
		case <-time.After(delay):
			// Continue to next attempt
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return fmt.Errorf("max retries exceeded: %w", err)
}

// Solution 6: Per-User Rate Limiter

type SolutionUserRateLimiter struct {
	mu                sync.Mutex
	limiters          map[string]*rate.Limiter
	requestsPerSecond float64
	burst             int
}

func NewSolutionUserRateLimiter(requestsPerSecond float64, burst int) *SolutionUserRateLimiter {
	return &SolutionUserRateLimiter{
		limiters:          make(map[string]*rate.Limiter),
		requestsPerSecond: requestsPerSecond,
		burst:             burst,
	}
}

func (url *SolutionUserRateLimiter) getLimiter(userID string) *rate.Limiter {
	url.mu.Lock()
	defer url.mu.Unlock()

	limiter, exists := url.limiters[userID]
	if !exists {
		limiter = rate.NewLimiter(rate.Limit(url.requestsPerSecond), url.burst)
		url.limiters[userID] = limiter
	}

	return limiter
}

func (url *SolutionUserRateLimiter) Allow(userID string) bool {
	limiter := url.getLimiter(userID)
	return limiter.Allow()
}

// Solution 7: Structured Error Handling

type SolutionAppError struct {
	Code       string
	Message    string
	HTTPStatus int
}

func (e SolutionAppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func SolutionNewNotFoundError(message string) SolutionAppError {
	return SolutionAppError{
		Code:       "NOT_FOUND",
		Message:    message,
		HTTPStatus: http.StatusNotFound,
	}
}

func SolutionNewBadRequestError(message string) SolutionAppError {
	return SolutionAppError{
		Code:       "BAD_REQUEST",
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func SolutionNewInternalError(message string) SolutionAppError {
	return SolutionAppError{
		Code:       "INTERNAL_ERROR",
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// Solution 8: Event Bus

type SolutionEventBus struct {
	mu          sync.RWMutex
	subscribers map[string][]EventHandler
}

func NewSolutionEventBus() *SolutionEventBus {
	return &SolutionEventBus{
		subscribers: make(map[string][]EventHandler),
	}
}

func (eb *SolutionEventBus) Subscribe(eventType string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.subscribers[eventType] = append(eb.subscribers[eventType], handler)
}

func (eb *SolutionEventBus) Publish(eventType string, event interface{}) {
	eb.mu.RLock()
	handlers := eb.subscribers[eventType]
	eb.mu.RUnlock()

	// Execute handlers concurrently
	for _, handler := range handlers {
		go handler(event)
	}
}
