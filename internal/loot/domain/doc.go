// Package domain defines the core loot value types: identities, grades,
// looting rules and generated drop entries. Types here are pure data and
// carry no collaborator dependencies.
package domain
