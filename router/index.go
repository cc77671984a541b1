package router

import (
	"wedding_rsvp/handler"
	"wedding_rsvp/middleware"
	"wedding_rsvp/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)

	account := v1.Group("/account", logger.New())
	account.Get("/", middleware.Protected(), handler.GetAccounts)
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Post("/", middleware.Protected(), validate.CreateAccount(), handler.CreateAccount)
	account.Post("/change-password", middleware.Protected(), validate.AdminChangePassword(), handler.AdminChangePassword)

	guest := v1.Group("/guest", logger.New())
	guest.Get("/", middleware.Protected(), handler.GetGuests)
	guest.Post("/", middleware.Protected(), validate.CreateGuest(), handler.CreateGuest)
	guest.Post("/upload", middleware.Protected(), validate.SpreadsheetUpload(), handler.UploadGuests)
	// Public: the RSVP form resolves an invitation code to a guest.
	guest.Get("/code/:code", handler.GetGuestByCode)
	guest.Get("/:guestId", middleware.Protected(), validate.GetById("guestId"), handler.GetGuestById)
	guest.Get("/:guestId/qr", middleware.Protected(), validate.GetById("guestId"), handler.GuestQRCode)
	guest.Put("/:guestId", middleware.Protected(), validate.EditGuest("guestId"), handler.EditGuest)
	guest.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteGuest)

	entourage := v1.Group("/entourage", logger.New())
	entourage.Get("/", handler.GetEntourage)
	entourage.Post("/", middleware.Protected(), validate.CreateEntourage(), handler.CreateEntourage)
	entourage.Post("/upload", middleware.Protected(), validate.SpreadsheetUpload(), handler.UploadEntourage)
	entourage.Put("/:memberId", middleware.Protected(), validate.EditEntourage("memberId"), handler.EditEntourage)
	entourage.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteEntourage)

	rsvp := v1.Group("/rsvp", logger.New())
	rsvp.Post("/", validate.SubmitRSVP(), handler.SubmitRSVP)
	rsvp.Get("/", middleware.Protected(), handler.GetRSVPs)
	rsvp.Delete("/clear", middleware.Protected(), handler.ClearRSVPs)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/", middleware.Protected(), handler.GetRSVPStatistic)

	info := v1.Group("/info", logger.New())
	info.Get("/", handler.GetWeddingInfo)
	info.Put("/", middleware.Protected(), validate.EditWeddingInfo(), handler.EditWeddingInfo)

	schedule := v1.Group("/schedule", logger.New())
	schedule.Get("/", handler.GetSchedule)
	schedule.Post("/", middleware.Protected(), validate.CreateScheduleEvent(), handler.CreateScheduleEvent)
	schedule.Put("/:eventId", middleware.Protected(), validate.UpdateScheduleEvent("eventId"), handler.UpdateScheduleEvent)
	schedule.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteScheduleEvent)

	locations := v1.Group("/locations", logger.New())
	locations.Get("/", handler.GetLocations)
	locations.Get("/:slug", handler.GetLocationBySlug)
	locations.Post("/", middleware.Protected(), validate.CreateLocation(), handler.CreateLocation)
	locations.Put("/:locationId", middleware.Protected(), validate.UpdateLocation("locationId"), handler.UpdateLocation)
	locations.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteLocation)

	attire := v1.Group("/attire", logger.New())
	attire.Get("/", handler.GetAttire)
	attire.Post("/", middleware.Protected(), validate.CreateAttire(), handler.CreateAttire)
	attire.Put("/:attireId", middleware.Protected(), validate.UpdateAttire("attireId"), handler.UpdateAttire)
	attire.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteAttire)

	prenup := v1.Group("/prenup", logger.New())
	prenup.Get("/", handler.GetPrenupPhotos)
	prenup.Post("/", middleware.Protected(), validate.UploadPrenupPhoto(), handler.CreatePrenupPhoto)
	prenup.Put("/:photoId", middleware.Protected(), validate.UpdatePrenupPhoto("photoId"), handler.UpdatePrenupPhoto)
	prenup.Delete("/", middleware.Protected(), validate.Delete(), handler.DeletePrenupPhoto)

	v1.Get("/ws/rsvp", middleware.Protected(), websocket.New(handler.RSVPFeed))

	// Exports are links shared with the couple, not authenticated sessions.
	export := v1.Group("/export", logger.New())
	export.Get("/guests", handler.ExportGuests)
	export.Get("/rsvps", handler.ExportRSVPs)
}
