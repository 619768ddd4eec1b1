package serve

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/bgraf/trackstat/geotrack"
	"github.com/bgraf/trackstat/report"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Run serves the summaries of the given track files on address until the server fails.
func Run(address string, trackPaths []string) error {
	r, err := NewRouter(trackPaths)
	if err != nil {
		return err
	}

	log.Printf("serving %d tracks on %s", len(trackPaths), address)

	return r.Run(address)
}

func NewRouter(trackPaths []string) (*gin.Engine, error) {
	api, err := newServeAPI(trackPaths)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/tracks", api.ServeTracks)
	r.GET("/tracks/:GUID", api.ServeTrack)

	return r, nil
}

type serveAPI struct {
	resources *resourceMap
}

func newServeAPI(trackPaths []string) (*serveAPI, error) {
	api := &serveAPI{resources: newResourceMap()}

	for _, p := range trackPaths {
		if _, err := api.resources.IDFromPath(p); err != nil {
			return nil, err
		}
	}

	return api, nil
}

type trackListing struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func (api *serveAPI) ServeTracks(c *gin.Context) {
	listing := []trackListing{}

	for _, guid := range api.resources.IDs() {
		path, _ := api.resources.PathFromID(guid)
		listing = append(listing, trackListing{ID: guid, Name: filepath.Base(path)})
	}

	c.JSON(http.StatusOK, listing)
}

// ServeTrack computes the summary of a track on every request, files may change on disk.
func (api *serveAPI) ServeTrack(c *gin.Context) {
	guid, err := uuid.Parse(c.Param("GUID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	trackFilePath, ok := api.resources.PathFromID(guid)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	name := filepath.Base(trackFilePath)

	m, err := geotrack.LoadMetrics(trackFilePath)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "path": name})
		return
	}

	c.JSON(http.StatusOK, report.NewRecord(report.Entry{Path: name, Metrics: m}))
}
