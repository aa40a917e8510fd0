// Package textutil provides small string helpers shared by the CLI tables.
package textutil
