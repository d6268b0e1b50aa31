//go:build tools

package main

import (
	_ "github.com/raito-io/enumer"
	_ "github.com/vektra/mockery/v2"
)
