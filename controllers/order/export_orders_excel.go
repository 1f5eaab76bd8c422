package orderControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/junaidrashid-git/storefront-api/checkout"
)

// GET /user/orders/export
func ExportOrdersToExcel(recorder *checkout.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := recorder.Orders()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"OrderID", "Date", "FullName", "Address", "Phone",
			"Payment", "Items", "Total",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.OrderID)
			row.AddCell().SetValue(o.Date)
			row.AddCell().SetValue(o.FullName)
			row.AddCell().SetValue(o.Address)
			row.AddCell().SetValue(o.Phone)
			row.AddCell().SetValue(string(o.Payment))

			var items []string
			for _, line := range o.Items {
				items = append(items, line.Title+" x"+strconv.Itoa(line.Quantity))
			}
			row.AddCell().SetValue(strings.Join(items, ", "))

			row.AddCell().SetValue(o.Total.String())
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		// Write file to response
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
