package main

import (
	"errors"
	"log"
	"net/http"
	"rtm/src/common"
	"rtm/src/config"
	"rtm/src/db"
	"rtm/src/engine"
	"rtm/src/lib"
	"rtm/src/lib/mailer"
	"rtm/src/models"
	"rtm/src/types"
	"time"

	"github.com/gin-gonic/gin"
)

func reservationHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/restaurants/:restaurantId/reservations", func(ctx *gin.Context) {
			var params types.RestaurantRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			query := db.
				Model(&models.Reservation{}).
				Where(&models.Reservation{RestaurantID: params.RestaurantID})
			if uid := ctx.GetString("uid"); uid != "" {
				query = query.Where(&models.Reservation{UserID: uid})
			}
			var reservations []models.Reservation
			err := query.
				Order("reservation_time asc").
				Find(&reservations).
				Error
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": reservations, "count": len(reservations)})
		}).
		POST("/restaurants/:restaurantId/reservations", func(ctx *gin.Context) {
			var params types.RestaurantRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateReservationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			reservationTime, err := time.Parse(config.TIME_PARSE_FORMAT, body.ReservationTime)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var restaurant models.Restaurant
			err = db.
				Model(&models.Restaurant{}).
				Where(&models.Restaurant{ID: params.RestaurantID}).
				First(&restaurant).
				Error
			if err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			if !engine.IsBookable(restaurant.Availability(), reservationTime) {
				ctx.JSON(http.StatusConflict, gin.H{"error": "restaurant is closed on the requested date"})
				return
			}
			reservation := models.Reservation{
				RestaurantID:    params.RestaurantID,
				UserID:          ctx.GetString("uid"),
				ReservationTime: reservationTime,
				NumberOfGuests:  body.NumberOfGuests,
				PhoneNumber:     body.PhoneNumber,
				Status:          types.RESERVATION_CONFIRMED,
			}
			if err := db.Create(&reservation).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			lib.InvalidateTableCache(params.RestaurantID)
			if body.Email != "" {
				go func() {
					if err := mailer.SendReservationConfirmation(&reservation, &restaurant, body.Email); err != nil {
						log.Printf("Could not send confirmation for reservation %s: %s\n", reservation.ID, err.Error())
					}
				}()
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": reservation})
		}).
		GET("/restaurants/:restaurantId/reservations/:reservationId", func(ctx *gin.Context) {
			var params types.ReservationRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var reservation models.Reservation
			err := db.
				Model(&models.Reservation{}).
				Preload("Table").
				Where(&models.Reservation{ID: params.ReservationID, RestaurantID: params.RestaurantID}).
				First(&reservation).
				Error
			if err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": reservation})
		}).
		PUT("/restaurants/:restaurantId/reservations/:reservationId", func(ctx *gin.Context) {
			var params types.ReservationRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateReservationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var reservation models.Reservation
			err := db.
				Model(&models.Reservation{}).
				Where(&models.Reservation{ID: params.ReservationID, RestaurantID: params.RestaurantID}).
				First(&reservation).
				Error
			if err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			if reservation.Finalized() {
				ctx.JSON(http.StatusConflict, gin.H{"error": common.ErrReservationFinalized.Error()})
				return
			}
			updates := models.Reservation{
				NumberOfGuests: body.NumberOfGuests,
				PhoneNumber:    body.PhoneNumber,
			}
			if body.ReservationTime != "" {
				reservationTime, err := time.Parse(config.TIME_PARSE_FORMAT, body.ReservationTime)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				updates.ReservationTime = reservationTime
			}
			err = db.
				Model(&models.Reservation{}).
				Where(&models.Reservation{ID: params.ReservationID}).
				Updates(&updates).
				Error
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			lib.InvalidateTableCache(params.RestaurantID)
			ctx.JSON(http.StatusOK, gin.H{"message": "Reservation updated successfully"})
		}).
		PUT("/restaurants/:restaurantId/reservations/:reservationId/cancel", func(ctx *gin.Context) {
			var params types.ReservationRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := common.CancelReservation(params.RestaurantID, params.ReservationID); err != nil {
				if errors.Is(err, common.ErrReservationFinalized) {
					ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "Reservation cancelled"})
		}).
		PUT("/restaurants/:restaurantId/reservations/:reservationId/checkin", func(ctx *gin.Context) {
			var params types.ReservationRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := common.CheckInReservation(params.RestaurantID, params.ReservationID); err != nil {
				if errors.Is(err, common.ErrReservationFinalized) {
					ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "Guest checked in"})
		}).
		PUT("/restaurants/:restaurantId/reservations/:reservationId/table", func(ctx *gin.Context) {
			var params types.ReservationRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.AssignTableRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := common.ReassignTable(params.RestaurantID, params.ReservationID, body.TableID); err != nil {
				if errors.Is(err, common.ErrReservationFinalized) {
					ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
					return
				}
				if errors.Is(err, common.ErrTableNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "Table assigned"})
		}).
		GET("/restaurants/:restaurantId/reservations/:reservationId/tables", func(ctx *gin.Context) {
			var params types.ReservationRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var reservation models.Reservation
			err := db.
				Model(&models.Reservation{}).
				Where(&models.Reservation{ID: params.ReservationID, RestaurantID: params.RestaurantID}).
				First(&reservation).
				Error
			if err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			now := time.Now()
			tables, reservations, err := loadFloor(db, params.RestaurantID, now)
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			available := engine.AvailableTablesForReservation(reservation, tables, reservations, now)
			ctx.JSON(http.StatusOK, gin.H{"data": available, "count": len(available)})
		}).
		GET("/restaurants/:restaurantId/agenda", func(ctx *gin.Context) {
			var params types.RestaurantRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var restaurant models.Restaurant
			err := db.
				Model(&models.Restaurant{}).
				Where(&models.Restaurant{ID: params.RestaurantID}).
				First(&restaurant).
				Error
			if err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			now := time.Now()
			tables, reservations, err := loadFloor(db, params.RestaurantID, now)
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			today := []models.Reservation{}
			for _, res := range reservations {
				if res.ReservationTime.Year() == now.Year() && res.ReservationTime.YearDay() == now.YearDay() {
					today = append(today, res)
				}
			}
			hours := engine.ParseOpeningHours(restaurant.OpeningHours)
			buckets := engine.GroupReservationsByHour(today, hours, now)
			statuses := engine.ResolveAll(tables, reservations, now)
			ctx.JSON(http.StatusOK, gin.H{"hours": buckets, "tableStatuses": statuses})
		})
	return g
}
