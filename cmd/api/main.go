package main

import "wishlist/internal/cli"

// @title       Wishlist API
// @version     1.0
// @description Published wishlists, product catalog and admin ingest.
// @BasePath    /
// @securityDefinitions.apikey Bearer
// @in   header
// @name Authorization
func main() {
	cli.Execute()
}
