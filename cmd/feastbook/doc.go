// Command feastbook manages catering customers, the set-menu catalog and
// feast orders.
//
// Run the interactive session from the directory holding config/app.json
// and .env (both optional):
//
//	feastbook                       # same as: feastbook console
//	feastbook menus                 # print the catalog by price
//	feastbook customers --name lee  # list or filter customers
//	feastbook orders                # print the order table
//
// Persistent flags override the layered config:
//
//	feastbook --data-dir /srv/feast --disk database console
package main
