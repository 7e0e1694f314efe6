package vis

// The page connects back to /ws on the same host, adds everything it is sent to a
// vis-network with physics off (the positions are already laid out) and fits the view
// once the "done" message arrives.

var html = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <title>mstviz</title>
    <style>
        * {
            margin: 0;
            font-family: sans-serif;
        }
        #title {
            text-align: center;
            padding: 8px;
            height: 24px;
        }
        #mynetwork {
            width: 100vw;
            height: calc(100vh - 40px);
        }
    </style>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <script type="text/javascript"
      src="https://unpkg.com/vis-network/standalone/umd/vis-network.min.js"></script>
  </head>
  <body>
    <div id="title"></div>
    <div id="mynetwork"></div>
    <script type="text/javascript">
var container = document.getElementById("mynetwork");

var data = {
  nodes: new vis.DataSet([]),
  edges: new vis.DataSet([]),
};

var options = {
  physics: {
    enabled: false,
  },
  nodes: {
    shape: "circle",
    font: { color: "black" },
  },
  edges: {
    font: { align: "middle", background: "white" },
    smooth: false,
  },
};
var network = new vis.Network(container, data, options);

// The layout lives in the unit square, scale it up to something vis can work with.
const scale = 800;

var ws = new WebSocket("ws://" + location.host + "/ws");

ws.onmessage = function (event) {
  const item = JSON.parse(event.data);
  if (item.type === "title") {
    document.title = item.data.text;
    document.getElementById("title").textContent = item.data.text;
  } else if (item.type === "node") {
    item.data.x = item.data.x * scale;
    item.data.y = (1 - item.data.y) * scale;
    data.nodes.add(item.data);
  } else if (item.type === "edge") {
    data.edges.add(item.data);
  } else if (item.type === "done") {
    network.fit();
  }
};

ws.onclose = function () {
  document.getElementById("title").textContent += " (disconnected)";
};
        </script>
  </body>
</html>`
