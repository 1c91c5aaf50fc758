// Package main es la CLI feelines: desglosa snapshots de tarifas porcentuales
// sin necesidad de base de datos.
package main

func main() {
	Execute()
}
