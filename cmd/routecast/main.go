// Command routecast prints the forecast along a route without starting the server.
package main

func main() {
	Execute()
}
