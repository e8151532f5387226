package dashboard

type HeatmapRequest struct {
	ColumnValue string `form:"column_value" binding:"required"`
}

type DumbbellRequest struct {
	ViewOption string `form:"view_option" binding:"required"`
}

type BarChartRequest struct {
	JobTitle string `form:"job_title" binding:"required"`
}

type HomeResponse struct {
	JobTitles   []string `json:"job_titles"`
	Columns     []string `json:"columns"`
	ViewOptions []string `json:"view_options"`
}
