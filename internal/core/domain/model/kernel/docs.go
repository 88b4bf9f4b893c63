// Package kernel provides core domain primitives and utilities for the scheduling system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - TimeWindow: A value object for half-open time intervals on the schedule grid
//   - ClockTime: A value object for hour-and-minute times within a single day
//   - Money: A value object for monetary amounts stored as integer cents
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
//
// The package follows Domain-Driven Design best practices, providing rich domain
// behavior and encapsulation of implementation details.
package kernel
