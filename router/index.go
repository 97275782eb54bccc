package router

import (
	"cruise_manager/handler"
	"cruise_manager/middleware"
	"cruise_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(app *fiber.App) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", middleware.AppContext())

	v1.Get("/club-cards", handler.GetClubCards)

	quotes := v1.Group("/quotes")
	quotes.Post("/", validate.Quote(), handler.CreateQuote)
	quotes.Post("/selection", validate.SelectionAction(), handler.ApplySelectionAction)

	cruises := v1.Group("/cruises")
	cruises.Get("/", validate.FilterCruise(), handler.GetCruises)
	cruises.Get("/:cruiseId", handler.GetCruise)

	catamarans := v1.Group("/catamarans")
	catamarans.Get("/", handler.GetCatamarans)
	catamarans.Get("/:catamaranId", handler.GetCatamaran)

	members := v1.Group("/members")
	members.Post("/", validate.CreateMember(), handler.CreateMember)
	members.Get("/", handler.GetMembers)
	members.Get("/email/:email", handler.GetMemberByEmail)
	members.Get("/:memberId", handler.GetMember)

	posts := v1.Group("/posts")
	posts.Get("/", validate.FilterPost(), handler.GetPosts)
	posts.Post("/", validate.CreatePost(), handler.CreatePost)
	posts.Get("/:postId", validate.GetById("postId"), handler.GetPost)
	posts.Delete("/:postId", validate.GetById("postId"), handler.DeletePost)
	posts.Post("/:postId/like", validate.GetById("postId"), handler.ToggleLike)
	posts.Post("/:postId/comments", validate.GetById("postId"), validate.CreateComment(), handler.CreateComment)

	messages := v1.Group("/messages")
	messages.Post("/", validate.SendMessage(), handler.SendMessage)
	messages.Get("/captain", handler.GetCaptain)
	messages.Get("/conversations/:userId", handler.GetConversations)
	messages.Get("/ws/:userId", websocket.New(handler.MessageFeed))
	messages.Get("/:userId/:otherId", handler.GetMessages)

	payments := v1.Group("/payments")
	payments.Get("/config", handler.GetPaymentConfig)
	payments.Post("/", validate.CreatePayment(), handler.CreatePayment)
	payments.Get("/customer/:email", handler.GetPaymentsByCustomer)
	payments.Get("/:paymentCode", handler.GetPayment)
	payments.Get("/:paymentCode/boarding-pass", handler.GetBoardingPass)

	v1.Post("/contact", validate.Contact(), handler.SendContact)

	admin := v1.Group("/admin")
	admin.Post("/login", validate.Login(), handler.Login)
	admin.Post("/logout", handler.Logout)
	admin.Get("/me", middleware.Protected(), handler.Me)

	admin.Get("/cruises", middleware.Protected(), validate.FilterCruise(), handler.GetAllCruises)
	admin.Post("/cruises", middleware.Protected(), validate.CreateCruise(), handler.CreateCruise)
	admin.Put("/cruises/:cruiseId", middleware.Protected(), validate.GetById("cruiseId"), validate.UpdateCruise(), handler.UpdateCruise)
	admin.Delete("/cruises/:cruiseId", middleware.Protected(), validate.GetById("cruiseId"), handler.DeleteCruise)

	admin.Get("/members", middleware.Protected(), handler.GetAllMembers)
	admin.Put("/members/:memberId/ban", middleware.Protected(), validate.GetById("memberId"), validate.BanMember(), handler.BanMember)
	admin.Put("/members/:memberId/unban", middleware.Protected(), validate.GetById("memberId"), handler.UnbanMember)

	admin.Get("/posts", middleware.Protected(), handler.GetAllPosts)
	admin.Delete("/posts/:postId", middleware.Protected(), validate.GetById("postId"), handler.AdminDeletePost)
	admin.Delete("/comments/:commentId", middleware.Protected(), validate.GetById("commentId"), handler.AdminDeleteComment)

	admin.Get("/messages", middleware.Protected(), handler.GetAllMessages)
	admin.Post("/messages/captain", middleware.Protected(), validate.SendMessage(), handler.CaptainReply)
	admin.Delete("/messages/:messageId", middleware.Protected(), validate.GetById("messageId"), handler.DeleteMessage)

	admin.Get("/payments", middleware.Protected(), handler.GetAllPayments)
	admin.Post("/payments/:paymentId/refund", middleware.Protected(), validate.GetById("paymentId"), validate.RefundPayment(), handler.RefundPayment)

	admin.Post("/uploads", middleware.Protected(), handler.UploadImage)
	admin.Delete("/uploads", middleware.Protected(), handler.DeleteImage)
}
