// Package postgres provides PostgreSQL implementations of the store
// interfaces. Each operation is a single parameterized statement; driver
// errors are translated to the store package's error taxonomy.
package postgres
