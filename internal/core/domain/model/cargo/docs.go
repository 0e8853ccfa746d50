// Package cargo provides the cargo unit value object and the capacity-bounded
// hold shared by every vessel type.
//
// The package includes:
//   - Unit: an immutable container with a Size (1 or 2 TEU) and a Category
//   - Category, Size: closed enumerations of the allowed values
//   - Hold: an ordered collection of units bounded by a capacity limit
//   - RemovalPolicy: how units leave a hold (by reference or by stack)
//   - Notifier: the port through which vessels report rejected operations
//
// Key business rules:
//   - Category tags are matched case-insensitively and stored upper-case
//   - Invalid size or category fails construction with *InvalidUnitError
//   - A hold never carries more than its limit; overflowing loads are rejected
//     without changing the hold
package cargo
