// Package config handles configuration loading and validation from
// environment variables. It provides type-safe access to application
// settings while keeping configuration details separate from business
// logic.
package config
