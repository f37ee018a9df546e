package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the RestoPOS API ❤️. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create staff account
- POST "/auth/login" - Access staff account
- POST "/auth/verify-email/:activationToken" - Activate staff account
- POST "/auth/forgot-password" - Request password reset
- POST "/auth/reset-password/:resetToken" - Reset password

RESTAURANT
- POST "/restaurants" - Create a restaurant
- GET "/restaurants/:restaurantId" - Get restaurant details
- GET "/restaurants/:restaurantId/settings" - Get restaurant settings
- PUT "/restaurants/:restaurantId/settings" - Update restaurant settings
- GET "/restaurants/:restaurantId/stats" - Dashboard statistics

TABLES
- POST "/tables" - Create a table
- GET "/restaurants/:restaurantId/tables" - List tables
- PATCH "/tables/:id" - Update a table
- DELETE "/tables/:id" - Delete a table

PRODUCTS & MENUS
- POST "/products" / GET "/restaurants/:restaurantId/products"
- POST "/menus" / GET "/restaurants/:restaurantId/menus" / GET "/menus/:id"
- POST "/categories" - Add an option group to a menu
- POST "/options" - Add an option to a group
- POST "/menu-images" - Upload menu photos
- POST "/formulas" / GET "/restaurants/:restaurantId/formulas"

ORDERS
- POST "/orders" - Open a new order on a table
- GET "/orders/:orderId" - Get order with items
- PUT "/orders/:orderId" - Merge selected products/formulas into the order
- POST "/orders/:orderId/menu" - Add a menu selection with options
- DELETE "/orders/:orderId/items/:itemId" - Remove an order line
- POST "/orders/:orderId/clear" - Empty the order
- POST "/orders/:orderId/validate" - Complete the order and free the table
- POST "/orders/:orderId/cancel" - Cancel the order and free the table
- GET "/restaurants/:restaurantId/orders" - List orders (table/status/date filters)

RESERVATIONS
- POST "/reservations" / GET "/restaurants/:restaurantId/reservations"
- PATCH "/reservations/:id" / DELETE "/reservations/:id"`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
