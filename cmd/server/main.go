package main

import "paycalc/internal/app/server"

func main() {
	server.Run()
}
