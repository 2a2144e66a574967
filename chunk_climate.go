package parkfile

import (
	"io"

	"github.com/mzki/parkfile/binio"
	"github.com/mzki/parkfile/chunk"
	"github.com/mzki/parkfile/world"
)

func readWeatherState(r *binio.Reader, ws *world.WeatherState) {
	ws.Weather = r.Uint8()
	ws.Temperature = r.Int8()
	ws.Effect = r.Uint8()
	ws.Gloom = r.Uint8()
	ws.Level = r.Uint8()
}

func writeWeatherState(w *binio.Writer, ws *world.WeatherState) {
	w.Uint8(ws.Weather)
	w.Int8(ws.Temperature)
	w.Uint8(ws.Effect)
	w.Uint8(ws.Gloom)
	w.Uint8(ws.Level)
}

func (e *Engine) readClimateChunk(st *world.State) error {
	_, err := chunk.Find(e.rs, chunkClimate, func(r *binio.Reader) error {
		c := &st.Climate
		c.Climate = r.Uint8()
		c.UpdateTimer = r.Uint16()
		readWeatherState(r, &c.Current)
		readWeatherState(r, &c.Next)
		return nil
	})
	return err
}

func (e *Engine) writeClimateChunk(ws io.WriteSeeker, st *world.State) error {
	return chunk.Write(ws, chunkClimate, func(w *binio.Writer) error {
		c := &st.Climate
		w.Uint8(c.Climate)
		w.Uint16(c.UpdateTimer)
		writeWeatherState(w, &c.Current)
		writeWeatherState(w, &c.Next)
		return nil
	})
}
