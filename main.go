package main

import "github.com/linelint/linelint/cmd/linelint"

func main() { linelint.Execute() }
