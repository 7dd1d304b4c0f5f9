package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"adboard/app/dto"
	"adboard/app/services"
)

type AdvertisementController struct{ Ads *services.AdvertisementService }

func NewAdvertisementController(ads *services.AdvertisementService) *AdvertisementController {
	return &AdvertisementController{Ads: ads}
}

func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (c *AdvertisementController) List(w http.ResponseWriter, r *http.Request) {
	ads, err := c.Ads.List()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ads)
}

func (c *AdvertisementController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	ad, err := c.Ads.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ad)
}

func (c *AdvertisementController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAdvertisementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if _, err := c.Ads.Create(req); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Advertisement created successfully")
}

func (c *AdvertisementController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req dto.UpdateAdvertisementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := c.Ads.Update(id, req); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Advertisement updated successfully")
}

func (c *AdvertisementController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := c.Ads.Delete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Advertisement deleted successfully")
}
