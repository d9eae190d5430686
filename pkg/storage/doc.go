// Package storage provides persistent storage for Meu Menu households.
// It uses BadgerDB as the embedded database and stores every value as JSON.
package storage
