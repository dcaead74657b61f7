package aiprovider

import "errors"

var (
	// ErrNotInitialized indicates the registry was used before Init.
	ErrNotInitialized = errors.New("provider registry not initialized")

	// ErrDisposed indicates the registry was used after Dispose.
	ErrDisposed = errors.New("provider registry disposed")

	// ErrSessionClosed indicates a translator session was used after Close.
	ErrSessionClosed = errors.New("provider session closed")

	// ErrEmptyResponse indicates the provider returned no usable content.
	ErrEmptyResponse = errors.New("empty response from provider")
)
