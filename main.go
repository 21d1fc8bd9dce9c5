package main

import "rentify-api/config"

func main() {
	config.RunServer()
}
