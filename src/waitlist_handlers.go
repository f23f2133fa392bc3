package main

import (
	"errors"
	"net/http"
	"rtm/src/common"
	"rtm/src/db"
	"rtm/src/engine"
	"rtm/src/models"
	"rtm/src/types"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func waitlistHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/restaurants/:restaurantId/waitlist", func(ctx *gin.Context) {
			var params types.RestaurantRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var entries []models.WaitlistEntry
			err := db.
				Model(&models.WaitlistEntry{}).
				Where(&models.WaitlistEntry{RestaurantID: params.RestaurantID}).
				Order("created_at asc").
				Find(&entries).
				Error
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			cohorts := engine.GroupByCohort(entries)
			ctx.JSON(http.StatusOK, gin.H{"data": entries, "count": len(entries), "cohorts": cohorts})
		}).
		POST("/restaurants/:restaurantId/waitlist", func(ctx *gin.Context) {
			var params types.RestaurantRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateWaitlistEntryRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			entry := models.WaitlistEntry{
				RestaurantID: params.RestaurantID,
				Name:         body.Name,
				PartySize:    body.PartySize,
				PhoneNumber:  body.PhoneNumber,
				Status:       types.WAITLIST_WAITING,
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var waiting []models.WaitlistEntry
				err := tx.
					Model(&models.WaitlistEntry{}).
					Where(&models.WaitlistEntry{RestaurantID: params.RestaurantID, Status: types.WAITLIST_WAITING}).
					Order("created_at asc").
					Find(&waiting).
					Error
				if err != nil {
					return err
				}
				// Position within the party-size cohort, not the whole queue.
				cohorts := engine.GroupByCohort(append(waiting, entry))
				for _, cohort := range cohorts {
					if cohort.Band.Contains(body.PartySize) {
						entry.PartyAhead = len(cohort.Entries) - 1
						wait := cohort.WaitTime
						entry.EstimatedWaitTime = &wait
						break
					}
				}
				return tx.Create(&entry).Error
			})
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": entry})
		}).
		GET("/restaurants/:restaurantId/waitlist/tables", func(ctx *gin.Context) {
			var params types.RestaurantRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			partySize, err := strconv.Atoi(ctx.Query("partySize"))
			if err != nil || partySize < 1 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "partySize must be a positive integer"})
				return
			}
			now := time.Now()
			db := db.GetDb()
			tables, reservations, err := loadFloor(db, params.RestaurantID, now)
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			derived := withDerivedStatus(tables, reservations, now)
			matches := engine.AvailableTablesForParty(partySize, derived)
			resp := gin.H{"data": matches, "count": len(matches)}
			if best := engine.FindBestTable(partySize, derived); best != nil {
				resp["suggested"] = best
			}
			ctx.JSON(http.StatusOK, resp)
		}).
		POST("/restaurants/:restaurantId/waitlist/:entryId/seat", func(ctx *gin.Context) {
			var params types.WaitlistRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.SeatWaitlistEntryRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			reservation, err := common.SeatWaitlistEntry(params.RestaurantID, params.EntryID, body.TableID, time.Now())
			if err != nil {
				if errors.Is(err, common.ErrEntryNotWaiting) {
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
			ctx.JSON(http.StatusCreated, gin.H{"data": reservation})
		}).
		PUT("/restaurants/:restaurantId/waitlist/:entryId/cancel", func(ctx *gin.Context) {
			var params types.WaitlistRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := common.CancelWaitlistEntry(params.RestaurantID, params.EntryID); err != nil {
				if errors.Is(err, common.ErrEntryNotWaiting) {
					ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "Waitlist entry cancelled"})
		})
	return g
}
