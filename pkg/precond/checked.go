//go:build !unchecked

package precond

const enabled = true
