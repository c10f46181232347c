// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - Auth: Implements API key validation to protect endpoints.
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - ErrorHandler: Renders classified errors (see core/apperr) as JSON responses
//     with the matching status code.
//
// These middleware components are registered globally in the start command.
package middleware
