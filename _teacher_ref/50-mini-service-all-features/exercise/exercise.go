// Package exercise provides a skeleton for building a production microservice.
// Your task: Implement missing components to create a complete microservice.
package exercise

import (
	"context"
	"net/http"
	"time"
)

// Exercise 1: Implement a simple in-memory cache with TTL
// This cache should:
// - Store key-value pairs
// - Automatically expire items after TTL
// - Be thread-safe

type Cache struct {
	// TODO: Add fields for storage, mutex, etc.
}

type cacheItem struct {
	value     interface{}
	expiresAt time.Time
}

func NewCache() *Cache {
	// TODO: Initialize cache
	return &Cache{}
}

func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	// TODO: Store value with expiration
}

func (c *Cache) Get(key string) (interface{}, bool) {
	// TODO: Retrieve value, checking if expired
	return nil, false
}

func (c *Cache) Delete(key string) {
	// TODO: Remove key from cache
}

// Exercise 2: Implement a circuit breaker
// The circuit breaker should:
// - Track success/failure rates
// - Open circuit after too many failures
// - Allow occasional requests when half-open
// - Close circuit after successful requests

type CircuitBreaker struct {
	// TODO: Add fields for state, counters, thresholds
}

type CircuitState int

const (
	StateClosed CircuitState = iota
	StateOpen
	StateHalfOpen
)

func NewCircuitBreaker(threshold int, timeout time.Duration) *CircuitBreaker {
	// TODO: Initialize circuit breaker
	return &CircuitBreaker{}
}

func (cb *CircuitBreaker) Call(fn func() error) error {
	// TODO: Execute function through circuit breaker
	// - Check if circuit is open
	// - Execute function
	// - Record success/failure
	// - Update circuit state
	return nil
}

func (cb *CircuitBreaker) State() CircuitState {
	// TODO: Return current state
	return StateClosed
}

// Exercise 3: Implement request timeout middleware
// This middleware should:
// - Enforce a timeout on HTTP requests
// - Cancel the request if it exceeds timeout
// - Return 504 Gateway Timeout

func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// TODO: Implement timeout logic
			// Hint: Use context.WithTimeout
			next.ServeHTTP(w, r)
		})
	}
}

// Exercise 4: Implement a worker pool
// The worker pool should:
// - Process jobs concurrently with N workers
// - Accept jobs via a channel
// - Gracefully shutdown when done

type WorkerPool struct {
	// TODO: Add fields for workers, job queue, etc.
}

type Job func() error

func NewWorkerPool(numWorkers int) *WorkerPool {
	// TODO: Initialize worker pool
	return &WorkerPool{}
}

func (wp *WorkerPool) Start(ctx context.Context) {
	// TODO: Start worker goroutines
}

func (wp *WorkerPool) Submit(job Job) {
	// TODO: Submit job to queue
}

func (wp *WorkerPool) Shutdown() {
	// TODO: Wait for all jobs to complete
}

// Exercise 5: Implement retry logic with exponential backoff
// This function should:
// - Retry failed operations
// - Use exponential backoff between retries
// - Give up after max retries

func RetryWithBackoff(
	ctx context.Context,
	maxRetries int,
	initialDelay time.Duration,
	fn func() error,
) error {
	// TODO: Implement retry logic
	// Hint: delay = initialDelay * 2^attempt
	return nil
}

// Exercise 6: Implement a rate limiter per-user
// Unlike the global rate limiter in middleware, this should:
// - Track rate limits per user ID
// - Clean up limiters for inactive users
// - Be thread-safe

type UserRateLimiter struct {
	// TODO: Add fields for per-user limiters
}

func NewUserRateLimiter(requestsPerSecond float64, burst int) *UserRateLimiter {
	// TODO: Initialize rate limiter
	return &UserRateLimiter{}
}

func (url *UserRateLimiter) Allow(userID string) bool {
	// TODO: Check if user is within rate limit
	return true
}

// Exercise 7: Implement structured error handling
// Create error types that can be mapped to HTTP status codes

type AppError struct {
	// TODO: Add fields for error code, message, HTTP status, etc.
}

func (e AppError) Error() string {
	// TODO: Implement error string
	return ""
}

func NewNotFoundError(message string) AppError {
	// TODO: Create 404 error
	return AppError{}
}

func NewBadRequestError(message string) AppError {
	// TODO: Create 400 error
	return AppError{}
}

func NewInternalError(message string) AppError {
	// TODO: Create 500 error
	return AppError{}
}

// Exercise 8: Implement a simple event bus
// The event bus should:
// - Allow subscribers to listen for events
// - Allow publishers to emit events
// - Support multiple subscribers per event type

type EventBus struct {
	// TODO: Add fields for subscribers
}

type EventHandler func(event interface{})

func NewEventBus() *EventBus {
	// TODO: Initialize event bus
	return &EventBus{}
}

func (eb *EventBus) Subscribe(eventType string, handler EventHandler) {
	// TODO: Register event handler
}

func (eb *EventBus) Publish(eventType string, event interface{}) {
	// TODO: Notify all subscribers
}
