package main

import (
	"log"
	"net/http"
	"rtm/src/config"
	"rtm/src/db"
	"rtm/src/engine"
	"rtm/src/models"
	"rtm/src/types"
	"rtm/src/utils"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func restaurantHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/restaurants", func(ctx *gin.Context) {
			db := db.GetDb()
			var restaurants []models.Restaurant
			err := db.
				Model(&models.Restaurant{}).
				Find(&restaurants).
				Error
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": restaurants, "count": len(restaurants)})
		}).
		POST("/restaurants", func(ctx *gin.Context) {
			var body types.CreateRestaurantRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			restaurant := models.Restaurant{
				Name:         body.Name,
				Location:     body.Location,
				Description:  body.Description,
				Phone:        body.Phone,
				OpeningHours: body.OpeningHours,
				Img:          body.Img,
			}
			if err := restaurant.SetAvailability(body.SpecialAvailability); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&restaurant).Error; err != nil {
					return err
				}
				return tx.
					Model(&models.Restaurant{}).
					Where(&models.Restaurant{ID: restaurant.ID}).
					Update("slug", utils.RestaurantSlug(restaurant.Name, restaurant.ID)).
					Error
			})
			if err != nil {
				log.Printf("Could not create restaurant: %s\n", err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": restaurant})
		}).
		GET("/restaurants/:restaurantId", func(ctx *gin.Context) {
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
			ctx.JSON(http.StatusOK, gin.H{"data": restaurant})
		}).
		PUT("/restaurants/:restaurantId", func(ctx *gin.Context) {
			var params types.RestaurantRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateRestaurantRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var restaurant models.Restaurant
				err := tx.
					Model(&models.Restaurant{}).
					Where(&models.Restaurant{ID: params.RestaurantID}).
					First(&restaurant).
					Error
				if err != nil {
					return err
				}
				updates := models.Restaurant{
					Name:         body.Name,
					Location:     body.Location,
					Description:  body.Description,
					Phone:        body.Phone,
					OpeningHours: body.OpeningHours,
					Img:          body.Img,
					Status:       body.Status,
				}
				if body.Name != "" {
					updates.Slug = utils.RestaurantSlug(body.Name, restaurant.ID)
				}
				if body.SpecialAvailability != nil {
					if err := updates.SetAvailability(body.SpecialAvailability); err != nil {
						return err
					}
				}
				return tx.
					Model(&models.Restaurant{}).
					Where(&models.Restaurant{ID: params.RestaurantID}).
					Updates(&updates).
					Error
			})
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "Restaurant updated successfully"})
		}).
		DELETE("/restaurants/:restaurantId", func(ctx *gin.Context) {
			var params types.RestaurantRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			err := db.
				Where(&models.Restaurant{ID: params.RestaurantID}).
				Delete(&models.Restaurant{}).
				Error
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		GET("/restaurants/:restaurantId/availability", func(ctx *gin.Context) {
			var params types.RestaurantRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			dateParam := ctx.Query("date")
			date, err := time.Parse(config.DATE_PARSE_FORMAT, dateParam)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
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
			exceptions := restaurant.Availability()
			if !engine.IsBookable(exceptions, date) {
				ctx.JSON(http.StatusOK, gin.H{
					"bookable":    false,
					"slots":       []string{},
					"closedDates": engine.ClosedDates(exceptions),
				})
				return
			}
			hours := engine.ParseOpeningHours(restaurant.OpeningHours)
			slots := engine.GenerateTimeSlots(hours, date, time.Now())
			ctx.JSON(http.StatusOK, gin.H{
				"bookable":    true,
				"slots":       slots,
				"closedDates": engine.ClosedDates(exceptions),
			})
		})
	return g
}
