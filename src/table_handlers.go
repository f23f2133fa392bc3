package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"rtm/src/db"
	"rtm/src/engine"
	"rtm/src/lib"
	"rtm/src/models"
	"rtm/src/types"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"
)

// loadFloor fetches a restaurant's tables and the day's reservations, the
// inputs every derived view needs.
func loadFloor(tx *gorm.DB, restaurantID string, now time.Time) ([]models.Table, []models.Reservation, error) {
	var tables []models.Table
	err := tx.
		Model(&models.Table{}).
		Where(&models.Table{RestaurantID: restaurantID}).
		Order("created_at asc").
		Find(&tables).
		Error
	if err != nil {
		return nil, nil, err
	}
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var reservations []models.Reservation
	err = tx.
		Model(&models.Reservation{}).
		Where(&models.Reservation{RestaurantID: restaurantID}).
		Where("reservation_time >= ?", startOfDay).
		Find(&reservations).
		Error
	if err != nil {
		return nil, nil, err
	}
	return tables, reservations, nil
}

// withDerivedStatus overwrites each table's cached status column with the
// value derived from the reservation snapshot.
func withDerivedStatus(tables []models.Table, reservations []models.Reservation, now time.Time) []models.Table {
	statuses := engine.ResolveAll(tables, reservations, now)
	out := make([]models.Table, len(tables))
	for i, table := range tables {
		table.Status = statuses[table.ID]
		out[i] = table
	}
	return out
}

func tableHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/restaurants/:restaurantId/tables", func(ctx *gin.Context) {
			var params types.RestaurantRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			cacheKey := params.RestaurantID + ":tables"
			if rd := lib.GetRedisClient(); rd != nil {
				val, err := rd.Get(context.Background(), cacheKey).Result()
				if err == nil && gjson.Valid(val) {
					var cached []models.Table
					if err := json.Unmarshal([]byte(val), &cached); err == nil {
						ctx.JSON(http.StatusOK, gin.H{"data": cached, "count": len(cached), "cached": true})
						return
					}
				}
			}
			now := time.Now()
			db := db.GetDb()
			tables, reservations, err := loadFloor(db, params.RestaurantID, now)
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			derived := withDerivedStatus(tables, reservations, now)
			if rd := lib.GetRedisClient(); rd != nil {
				if b, err := json.Marshal(derived); err == nil {
					if err := rd.Set(context.Background(), cacheKey, string(b), time.Minute).Err(); err != nil {
						log.Printf("Could not cache tables for %s: %s\n", params.RestaurantID, err.Error())
					}
				}
			}
			ctx.JSON(http.StatusOK, gin.H{"data": derived, "count": len(derived)})
		}).
		POST("/restaurants/:restaurantId/tables", func(ctx *gin.Context) {
			var params types.RestaurantRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateTableRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			table := models.Table{
				RestaurantID: params.RestaurantID,
				Name:         body.Name,
				MinCapacity:  body.MinCapacity,
				MaxCapacity:  body.MaxCapacity,
				Status:       types.TABLE_AVAILABLE,
			}
			db := db.GetDb()
			if err := db.Create(&table).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			lib.InvalidateTableCache(params.RestaurantID)
			ctx.JSON(http.StatusCreated, gin.H{"data": table, "shape": engine.ShapeFor(table)})
		}).
		GET("/restaurants/:restaurantId/tables/:tableId", func(ctx *gin.Context) {
			var params types.TableRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var table models.Table
			err := db.
				Model(&models.Table{}).
				Where(&models.Table{ID: params.TableID, RestaurantID: params.RestaurantID}).
				First(&table).
				Error
			if err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": table, "shape": engine.ShapeFor(table)})
		}).
		PUT("/restaurants/:restaurantId/tables/:tableId", func(ctx *gin.Context) {
			var params types.TableRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateTableRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			now := time.Now()
			db := db.GetDb()
			var accepted *engine.Position
			err := db.Transaction(func(tx *gorm.DB) error {
				tables, _, err := loadFloor(tx, params.RestaurantID, now)
				if err != nil {
					return err
				}
				var table *models.Table
				for i := range tables {
					if tables[i].ID == params.TableID {
						table = &tables[i]
						break
					}
				}
				if table == nil {
					return gorm.ErrRecordNotFound
				}
				updates := map[string]any{}
				if body.Name != nil {
					updates["name"] = *body.Name
				}
				if body.MinCapacity != nil {
					updates["min_capacity"] = *body.MinCapacity
				}
				if body.MaxCapacity != nil {
					updates["max_capacity"] = *body.MaxCapacity
				}
				if body.Status != nil {
					// Manager override, e.g. walk-in occupancy.
					updates["status"] = *body.Status
				}
				if body.X != nil && body.Y != nil {
					// Drag moves go through the layout: an overlapping
					// position silently keeps the previous one.
					layout := engine.NewLayout(tables)
					pos := layout.ProposeMove(params.TableID, engine.Position{X: *body.X, Y: *body.Y})
					accepted = &pos
					updates["x"] = pos.X
					updates["y"] = pos.Y
				}
				if len(updates) == 0 {
					return nil
				}
				return tx.
					Model(&models.Table{}).
					Where(&models.Table{ID: params.TableID}).
					Updates(updates).
					Error
			})
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			lib.InvalidateTableCache(params.RestaurantID)
			resp := gin.H{"message": "Table updated successfully"}
			if accepted != nil {
				resp["position"] = accepted
			}
			ctx.JSON(http.StatusOK, resp)
		}).
		DELETE("/restaurants/:restaurantId/tables/:tableId", func(ctx *gin.Context) {
			var params types.TableRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			err := db.
				Where(&models.Table{ID: params.TableID, RestaurantID: params.RestaurantID}).
				Delete(&models.Table{}).
				Error
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			lib.InvalidateTableCache(params.RestaurantID)
			ctx.Status(http.StatusNoContent)
		}).
		GET("/restaurants/:restaurantId/floorplan", func(ctx *gin.Context) {
			var params types.RestaurantRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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
			layout := engine.NewLayout(derived)
			type placedTable struct {
				models.Table
				Shape    engine.Shape    `json:"shape"`
				Position engine.Position `json:"position"`
				Radius   float64         `json:"radius,omitempty"`
			}
			placed := make([]placedTable, len(derived))
			for i, table := range derived {
				pos, _ := layout.Position(table.ID)
				placed[i] = placedTable{Table: table, Shape: engine.ShapeFor(table), Position: pos}
				if placed[i].Shape == engine.SHAPE_ROUND {
					placed[i].Radius = engine.CircleRadius
				}
			}
			ctx.JSON(http.StatusOK, gin.H{"data": placed, "count": len(placed)})
		})
	return g
}
