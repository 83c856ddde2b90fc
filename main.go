package main

import (
	"apibench-server/setup"

	"github.com/gorilla/mux"
)

func main() {
	setup.MustLoadConfig()
	setup.MustInitDb()

	r := mux.NewRouter()
	setup.StartServer(r)
}
