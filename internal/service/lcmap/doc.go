// Package lcmap provides typed operations on top of the LCMAP REST client:
// system status, Landsat 8 surface reflectance tiles and rods, and sample model jobs.
package lcmap
