// Package models defines the core domain models for billkeeper.
//
// # Models
//
//   - User: a registered account, identified by email
//   - Bill: a billing record created by an authenticated user
//
// # Design Principles
//
// 1. **Store-shaped**: models carry bson tags and map 1:1 onto their
// MongoDB documents; the store's `_id` stays a primitive.ObjectID.
// 2. **Separate application id**: every Bill also carries a
// server-assigned GeneratingID (UUID) so records stay addressable
// independently of the store's primary key.
// 3. **No secrets on the wire**: the password hash is never serialized
// to JSON.
package models
