package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"github.com/urolovforever/eccomerce/models"
	"gorm.io/gorm"
)

// ExportProductsToExcel streams the whole catalog as an .xlsx workbook.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Preload("Tags").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Name", "Slug", "SKU", "Type", "Category",
			"Price", "Discount%", "DiscountedPrice", "Stock",
			"Tags", "Featured", "Active", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Slug)
			row.AddCell().SetValue(p.SKU)
			row.AddCell().SetValue(string(p.ProductType))
			row.AddCell().SetValue(p.Category.Name)
			row.AddCell().SetValue(p.Price.String())
			row.AddCell().SetValue(p.DiscountPercentage)
			row.AddCell().SetValue(p.DiscountedPrice().String())
			row.AddCell().SetValue(p.Stock)

			var tagNames []string
			for _, tag := range p.Tags {
				tagNames = append(tagNames, tag.Name)
			}
			row.AddCell().SetValue(strings.Join(tagNames, ","))

			row.AddCell().SetValue(p.IsFeatured)
			row.AddCell().SetValue(p.IsActive)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
