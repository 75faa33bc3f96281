package controllers

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/Saaquib01/TheTasteQuest/models"
	"github.com/Saaquib01/TheTasteQuest/store"
	"github.com/Saaquib01/TheTasteQuest/utils"

	"github.com/gin-gonic/gin"
)

// DashboardController aggregates the ledger into stall-level overview stats
type DashboardController struct {
	Store *store.LedgerStore
}

type ItemSummary struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  int    `json:"revenue"`
}

type RecentOrder struct {
	BillNumber string `json:"billNumber"`
	ItemName   string `json:"itemName"`
	Total      int    `json:"total"`
	OrderDate  string `json:"orderDate"` // e.g. "Today", "Yesterday"
}

func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	rows, err := dc.Store.ReadAll()
	if err != nil {
		respondBillingError(c, err)
		return
	}

	now := time.Now()
	today := utils.BeginningOfDay(now)

	// Today's revenue and order count
	var todayRevenue, todayOrders int
	var pendingCount int
	itemTotals := make(map[string]*ItemSummary)
	for _, row := range rows {
		if row.Status == models.StatusPending {
			pendingCount++
		}
		if !row.Date.Before(today) {
			todayRevenue += row.TotalAmount
			todayOrders++
		}

		summary, ok := itemTotals[row.ItemName]
		if !ok {
			summary = &ItemSummary{Name: row.ItemName}
			itemTotals[row.ItemName] = summary
		}
		summary.Quantity += row.Quantity
		summary.Revenue += row.TotalAmount
	}

	// Top items by quantity sold
	topItems := make([]ItemSummary, 0, len(itemTotals))
	for _, summary := range itemTotals {
		topItems = append(topItems, *summary)
	}
	sort.Slice(topItems, func(i, j int) bool {
		if topItems[i].Quantity != topItems[j].Quantity {
			return topItems[i].Quantity > topItems[j].Quantity
		}
		return topItems[i].Name < topItems[j].Name
	})
	if len(topItems) > 3 {
		topItems = topItems[:3]
	}

	// Recent orders (last 5, newest first)
	var recentOrders []RecentOrder
	for i := len(rows) - 1; i >= 0 && len(recentOrders) < 5; i-- {
		row := rows[i]
		daysAgo := utils.DaysBetween(row.Date, now)
		var orderDate string
		switch daysAgo {
		case 0:
			orderDate = "Today"
		case 1:
			orderDate = "Yesterday"
		default:
			orderDate = fmt.Sprintf("%d days ago", daysAgo)
		}
		recentOrders = append(recentOrders, RecentOrder{
			BillNumber: row.BillNumber,
			ItemName:   row.ItemName,
			Total:      row.TotalAmount,
			OrderDate:  orderDate,
		})
	}

	// Compose response
	response := gin.H{
		"todayRevenue":  todayRevenue,
		"todayOrders":   todayOrders,
		"totalOrders":   len(rows),
		"pendingOrders": pendingCount,
		"topItems":      topItems,
		"recentOrders":  recentOrders,
	}

	c.JSON(http.StatusOK, response)
}
