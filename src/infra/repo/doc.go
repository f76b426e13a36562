// Package repo contains the user store implementations of ports.UserRepository.
//
//   - MemoryRepository keeps the list in process memory (tests, demos).
//   - FileRepository keeps the list as a JSON array on disk.
//   - PostgresRepository keeps the list in the registered_users table.
//
// Every store assigns IDs and creation times on Append and returns records in
// insertion order.
package repo
