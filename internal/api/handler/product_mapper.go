package handler

import "github.com/retailrelay/commerce-api/internal/core/ports"

// --- Request → Service input ---

func toCreateInput(req createProductRequest) ports.CreateProductInput {
	return ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		InStock:     req.InStock,
		Quantity:    req.Quantity,
	}
}

func toUpdateInput(req updateProductRequest) ports.UpdateProductInput {
	return ports.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		InStock:     req.InStock,
		Quantity:    req.Quantity,
	}
}

// --- Service result → HTTP response ---

func toPagination(r *ports.ListProductsResult) paginationResponse {
	return paginationResponse{
		Page:  r.Page,
		Limit: r.Limit,
		Total: r.Total,
		Pages: r.TotalPages,
	}
}
