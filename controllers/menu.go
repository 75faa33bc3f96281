// controllers/menu.go
package controllers

import (
	"net/http"

	"github.com/Saaquib01/TheTasteQuest/models"
	"github.com/Saaquib01/TheTasteQuest/utils"

	"github.com/gin-gonic/gin"
)

// GetMenu returns the full catalog ordered by item code
func GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": models.MenuItems()})
}

// GetMenuItem returns a single catalog entry by its 2-digit code
func GetMenuItem(c *gin.Context) {
	item, err := models.LookupItem(c.Param("code"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Menu item not found")
		return
	}

	c.JSON(http.StatusOK, item)
}
