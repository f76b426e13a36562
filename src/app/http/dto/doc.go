// Package dto contains Data Transfer Objects for HTTP requests and responses.
//
// DTOs are separate from domain entities to:
//   - Control what data is exposed in the API
//   - Handle JSON serialization/deserialization
//   - Add binding tags for required form fields
//
// Naming convention:
//   - Request types: <Action><Resource>Request (e.g., RegisterUserRequest)
//   - Response types: <Resource>Response (e.g., UserResponse)
package dto
