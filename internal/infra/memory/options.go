package memory

import "time"

// Option configures a Backend.
type Option func(*Backend)

// WithClock sets the time source used for creation and update timestamps.
func WithClock(clock func() time.Time) Option {
	return func(b *Backend) {
		b.clock = clock
	}
}

// WithBaseURL sets the endpoint prefix of derived avatar and preview URLs.
func WithBaseURL(baseURL string) Option {
	return func(b *Backend) {
		b.baseURL = baseURL
	}
}

// WithProject sets the project id appended to derived URLs.
func WithProject(project string) Option {
	return func(b *Backend) {
		b.project = project
	}
}

// WithBucket sets the bucket id reported for stored files.
func WithBucket(bucket string) Option {
	return func(b *Backend) {
		b.bucket = bucket
	}
}
