package routes

import (
	"armoire/admin"
	"armoire/auth"
	"armoire/cart"
	"armoire/middleware"
	"armoire/orders"
	"armoire/products"
	"armoire/ratelim"
	"armoire/reviews"
	"armoire/wishlist"

	"github.com/julienschmidt/httprouter"
)

// RoutesWrapper wires every route group onto the router.
func RoutesWrapper(router *httprouter.Router, rl *ratelim.RateLimiter) {
	AddAuthRoutes(router, rl)
	AddProductRoutes(router, rl)
	AddCartRoutes(router, rl)
	AddOrderRoutes(router, rl)
	AddWishlistRoutes(router, rl)
	AddReviewsRoutes(router, rl)
	AddAdminRoutes(router, rl)
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
	router.POST("/api/auth/token/refresh", rl.Limit(auth.RefreshToken))
}

func AddProductRoutes(router *httprouter.Router, _ *ratelim.RateLimiter) {
	router.GET("/api/products", products.GetProducts)
	router.GET("/api/products/:productId", products.GetProduct)
}

func AddCartRoutes(router *httprouter.Router, _ *ratelim.RateLimiter) {
	router.GET("/api/cart", middleware.Authenticate(cart.GetCart))
	router.POST("/api/cart/add", middleware.Authenticate(cart.AddToCart))
	router.POST("/api/cart/remove", middleware.Authenticate(cart.RemoveFromCart))
	router.PUT("/api/cart/update", middleware.Authenticate(cart.UpdateQuantity))
	router.POST("/api/cart/apply-discount", middleware.Authenticate(cart.ApplyDiscount))
	router.POST("/api/cart/clear", middleware.Authenticate(cart.ClearCart))
}

func AddOrderRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/orders", middleware.Authenticate(orders.CreateOrder))
	router.POST("/api/orders/create-razorpay-order", rl.Limit(middleware.Authenticate(orders.CreateRazorpayOrder)))
	// Gateway callback; authenticity comes from the signature, not a JWT.
	router.POST("/api/orders/verify-payment", rl.Limit(orders.VerifyPayment))
	router.GET("/api/orders/history", middleware.Authenticate(orders.GetOrderHistory))
	// "order/:orderId" rather than a bare wildcard: httprouter rejects a
	// wildcard alongside the static "history" segment.
	router.GET("/api/orders/order/:orderId", middleware.Authenticate(orders.GetOrder))
	router.GET("/api/orders/order/:orderId/invoice", middleware.Authenticate(orders.DownloadInvoice))
}

func AddWishlistRoutes(router *httprouter.Router, _ *ratelim.RateLimiter) {
	router.GET("/api/wishlist", middleware.OptionalAuth(wishlist.GetWishlist))
	router.POST("/api/wishlist/add", middleware.OptionalAuth(wishlist.AddToWishlist))
	router.DELETE("/api/wishlist/remove/:productId", middleware.OptionalAuth(wishlist.RemoveFromWishlist))
	router.POST("/api/wishlist/clear", middleware.OptionalAuth(wishlist.ClearWishlist))
	router.POST("/api/wishlist/merge", middleware.Authenticate(wishlist.MergeWishlists))
}

func AddReviewsRoutes(router *httprouter.Router, _ *ratelim.RateLimiter) {
	router.POST("/api/reviews", middleware.Authenticate(reviews.AddReview))
	router.GET("/api/reviews/product/:productId", reviews.GetProductReviews)
}

func AddAdminRoutes(router *httprouter.Router, _ *ratelim.RateLimiter) {
	adm := func(h httprouter.Handle) httprouter.Handle {
		return middleware.Authenticate(middleware.RequireAdmin(h))
	}

	router.GET("/api/admin/orders", adm(admin.GetOrders))
	router.GET("/api/admin/orders/:orderId", adm(admin.GetOrder))
	router.PUT("/api/admin/orders/:orderId/status", adm(admin.UpdateOrderStatus))
	router.DELETE("/api/admin/orders/:orderId", adm(admin.DeleteOrder))

	router.POST("/api/admin/products", adm(products.CreateProduct))
	router.PUT("/api/admin/products/:productId", adm(products.UpdateProduct))
	router.DELETE("/api/admin/products/:productId", adm(products.DeleteProduct))

	router.GET("/api/admin/reviews", adm(reviews.ListReviews))
	router.PUT("/api/admin/reviews/:reviewId/status", adm(reviews.SetReviewStatus))
	router.DELETE("/api/admin/reviews/:reviewId", adm(reviews.DeleteReview))

	router.GET("/api/admin/users", adm(admin.GetUsers))
}
